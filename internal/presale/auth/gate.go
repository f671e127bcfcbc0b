// Package auth gates administrative operations.
package auth

import (
	"fmt"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

// Gate compares callers with the administrator recorded at deployment.
type Gate struct {
	administrator model.Address
}

// NewGate returns a gate for administrator.
func NewGate(administrator model.Address) Gate {
	return Gate{administrator: administrator}
}

// Administrator returns the recorded administrator.
func (g Gate) Administrator() model.Address {
	return g.administrator
}

// RequireAdministrator fails with model.ErrUnauthorized unless caller is the administrator.
func (g Gate) RequireAdministrator(caller model.Address) error {
	if caller != g.administrator || caller == model.ZeroAddress {
		return fmt.Errorf("%w: %s", model.ErrUnauthorized, caller.Hex())
	}
	return nil
}
