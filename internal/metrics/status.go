package metrics

import "github.com/paulrouge/multitoken-presale/internal/presale/model"

const unknown = "unknown"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case model.IsRejection(err):
		return "rejected"
	default:
		return "error"
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknown
	}
	return v
}
