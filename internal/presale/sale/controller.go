// Package sale implements the multi-phase sale controller: presale, regular and free minting,
// mint limits, fee splitting, escrow routing and reveal.
//
// Every call runs as one store transaction. A rejected or failed call leaves no trace in the
// sale state, the token ledger, the payment balances or the outboxes.
package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/paulrouge/multitoken-presale/internal/clock"
	"github.com/paulrouge/multitoken-presale/internal/presale/auth"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
)

// DefaultName is the collection name used when the deployment does not set one.
const DefaultName = "PresaleMultiToken"

// Dependencies are the collaborators of a Controller. Auditor and Clock are optional.
type Dependencies struct {
	Ledger    TokenLedger
	Payments  Payments
	Escrow    EscrowRouter
	Events    EventQueue
	Whitelist Whitelist
	Auditor   Auditor
	Metrics   ControllerMetrics
	Clock     clock.Clock
}

// Controller owns the sale state of one collection.
type Controller struct {
	store      store.Store
	deployment model.Deployment
	gate       auth.Gate
	ledger     TokenLedger
	payments   Payments
	escrow     EscrowRouter
	events     EventQueue
	whitelist  Whitelist
	auditor    Auditor
	metrics    ControllerMetrics
	clock      clock.Clock
	logger     *zap.Logger
}

// Deploy records the deployment parameters on first use and returns the recorded ones.
// A store that already holds a different deployment is rejected.
func Deploy(ctx context.Context, st store.Store, d model.Deployment) (model.Deployment, error) {
	if d.Name == "" {
		d.Name = DefaultName
	}
	if err := validateDeployment(d); err != nil {
		return model.Deployment{}, err
	}

	var recorded model.Deployment
	err := st.Update(ctx, func(tx store.Tx) error {
		existing, ok, err := readDeployment(tx)
		if err != nil {
			return err
		}
		if !ok {
			recorded = d
			return writeDeployment(tx, d)
		}
		if existing != d {
			return fmt.Errorf("%w: store holds deployment %q administered by %s", model.ErrInvalidConfiguration, existing.Name, existing.Administrator.Hex())
		}
		recorded = existing
		return nil
	})
	if err != nil {
		return model.Deployment{}, fmt.Errorf("deploy: %w", err)
	}
	return recorded, nil
}

func validateDeployment(d model.Deployment) error {
	switch {
	case d.Administrator == model.ZeroAddress:
		return fmt.Errorf("%w: administrator is required", model.ErrInvalidConfiguration)
	case d.FeeTreasury == model.ZeroAddress:
		return fmt.Errorf("%w: fee treasury is required", model.ErrInvalidConfiguration)
	case d.MaxSupply == 0:
		return fmt.Errorf("%w: max supply should be positive", model.ErrInvalidConfiguration)
	}
	return nil
}

// NewController builds a Controller for a recorded deployment.
func NewController(st store.Store, deployment model.Deployment, deps Dependencies, logger *zap.Logger) (*Controller, error) {
	switch {
	case st == nil:
		return nil, errors.New("state store is required")
	case deps.Ledger == nil:
		return nil, errors.New("token ledger is required")
	case deps.Payments == nil:
		return nil, errors.New("payments are required")
	case deps.Escrow == nil:
		return nil, errors.New("escrow router is required")
	case deps.Events == nil:
		return nil, errors.New("event queue is required")
	case deps.Whitelist == nil:
		return nil, errors.New("whitelist is required")
	case deps.Metrics == nil:
		return nil, errors.New("sale controller metrics is required")
	case logger == nil:
		return nil, errors.New("logger is required")
	}
	if err := validateDeployment(deployment); err != nil {
		return nil, err
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}

	return &Controller{
		store:      st,
		deployment: deployment,
		gate:       auth.NewGate(deployment.Administrator),
		ledger:     deps.Ledger,
		payments:   deps.Payments,
		escrow:     deps.Escrow,
		events:     deps.Events,
		whitelist:  deps.Whitelist,
		auditor:    deps.Auditor,
		metrics:    deps.Metrics,
		clock:      deps.Clock,
		logger:     logger.Named("sale").With(zap.String("collection", deployment.Name)),
	}, nil
}

// Name returns the collection name.
func (c *Controller) Name() string {
	return c.deployment.Name
}

// Deployment returns the recorded deployment parameters.
func (c *Controller) Deployment() model.Deployment {
	return c.deployment
}

// update runs fn against the current state in one transaction and observes the outcome.
func (c *Controller) update(ctx context.Context, op string, fn func(tx store.Tx, st *model.SaleState) error) error {
	started := time.Now()
	err := c.store.Update(ctx, func(tx store.Tx) error {
		st, err := loadState(tx, c.deployment)
		if err != nil {
			return err
		}
		return fn(tx, &st)
	})
	c.metrics.Observe(op, err, started)
	return err
}

// administer gates op on the administrator, runs it and records an audit entry.
func (c *Controller) administer(ctx context.Context, op string, caller model.Address, detail string, fn func(tx store.Tx, st *model.SaleState) error) error {
	var err error
	if err = c.gate.RequireAdministrator(caller); err != nil {
		c.metrics.Observe(op, err, time.Now())
	} else {
		err = c.update(ctx, op, fn)
	}

	c.audit(ctx, op, caller, detail, err)
	logger := c.logger.With(zap.String("operation", op), zap.String("caller", caller.Hex()), zap.String("detail", detail))
	switch {
	case err == nil:
		logger.Info("administrative call applied")
	case model.IsRejection(err):
		logger.Debug("administrative call rejected", zap.Error(err))
	default:
		logger.Error("administrative call failed", zap.Error(err))
	}
	return err
}

func (c *Controller) audit(ctx context.Context, op string, caller model.Address, detail string, err error) {
	if c.auditor == nil {
		return
	}
	rec := model.AuditRecord{
		Collection: c.deployment.Name,
		Operation:  op,
		Caller:     caller,
		Detail:     detail,
		Status:     model.AuditSucceeded,
		Timestamp:  c.clock.Now(),
	}
	if err != nil {
		rec.Status = model.AuditRejected
		rec.Error = err.Error()
	}
	c.auditor.Record(ctx, rec)
}
