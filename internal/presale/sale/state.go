package sale

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
	"github.com/paulrouge/multitoken-presale/pkg/safe"
)

var (
	keyDeployment       = []byte("sale/deployment")
	keyPresalePrice     = []byte("sale/presale_price")
	keyRegularPrice     = []byte("sale/regular_price")
	keyPresaleOpened    = []byte("sale/presale_opened")
	keyRegularOpened    = []byte("sale/regular_opened")
	keyRequireWhitelist = []byte("sale/require_whitelist")
	keyMintID           = []byte("sale/mint_id")
	keyMintLimit        = []byte("sale/mint_limit")
	keyCraftEscrow      = []byte("sale/craft_escrow")
	keyTreasury         = []byte("sale/treasury")
	keyLatestPurchase   = []byte("sale/latest_purchase_at")
)

const mintCountPrefix = "sale/mint_count"

func mintCountKey(addr model.Address) []byte {
	return store.Key(mintCountPrefix, addr)
}

func readDeployment(r store.Reader) (model.Deployment, bool, error) {
	data, err := r.Get(keyDeployment)
	if errors.Is(err, store.ErrNotFound) {
		return model.Deployment{}, false, nil
	}
	if err != nil {
		return model.Deployment{}, false, fmt.Errorf("get deployment: %w", err)
	}
	var d model.Deployment
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Deployment{}, false, fmt.Errorf("unmarshal deployment: %w", err)
	}
	return d, true, nil
}

func writeDeployment(tx store.Tx, d model.Deployment) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal deployment: %w", err)
	}
	return tx.Put(keyDeployment, data)
}

// loadState reads the mutable sale state on top of the deployment constants.
func loadState(r store.Reader, d model.Deployment) (model.SaleState, error) {
	st := model.SaleState{
		Name:          d.Name,
		Administrator: d.Administrator,
		MaxSupply:     d.MaxSupply,
		UnrevealedURI: d.UnrevealedURI,
		FeeTreasury:   d.FeeTreasury,
	}

	var err error
	if st.PresalePrice, err = store.GetAmount(r, keyPresalePrice); err != nil {
		return st, fmt.Errorf("get presale price: %w", err)
	}
	if st.RegularPrice, err = store.GetAmount(r, keyRegularPrice); err != nil {
		return st, fmt.Errorf("get regular price: %w", err)
	}
	if st.PresaleOpened, err = store.GetBool(r, keyPresaleOpened); err != nil {
		return st, fmt.Errorf("get presale flag: %w", err)
	}
	if st.RegularSaleOpened, err = store.GetBool(r, keyRegularOpened); err != nil {
		return st, fmt.Errorf("get regular sale flag: %w", err)
	}
	if st.RequireWhitelist, err = store.GetBool(r, keyRequireWhitelist); err != nil {
		return st, fmt.Errorf("get whitelist flag: %w", err)
	}
	if st.MintID, err = store.GetUint64(r, keyMintID); err != nil {
		return st, fmt.Errorf("get mint id: %w", err)
	}
	if st.MintLimit, err = store.GetUint64(r, keyMintLimit); err != nil {
		return st, fmt.Errorf("get mint limit: %w", err)
	}

	escrow, ok, err := store.GetAddress(r, keyCraftEscrow)
	if err != nil {
		return st, fmt.Errorf("get craft escrow: %w", err)
	}
	st.CraftEscrow = d.DefaultEscrow
	if ok {
		st.CraftEscrow = escrow
	}

	treasury, ok, err := store.GetAddress(r, keyTreasury)
	if err != nil {
		return st, fmt.Errorf("get treasury: %w", err)
	}
	st.Treasury = d.Administrator
	if ok {
		st.Treasury = treasury
	}

	latest, err := store.GetUint64(r, keyLatestPurchase)
	if err != nil {
		return st, fmt.Errorf("get latest purchase: %w", err)
	}
	if latest > 0 {
		nanos, err := safe.Int(latest)
		if err != nil {
			return st, fmt.Errorf("decode latest purchase: %w", err)
		}
		st.LatestPurchaseAt = time.Unix(0, int64(nanos)).UTC()
	}
	return st, nil
}

func putLatestPurchase(tx store.Tx, at time.Time) error {
	nanos, err := safe.Uint64(at.UnixNano())
	if err != nil {
		return fmt.Errorf("latest purchase time %s: %w", at, err)
	}
	return store.PutUint64(tx, keyLatestPurchase, nanos)
}
