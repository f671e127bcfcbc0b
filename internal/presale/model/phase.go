package model

// Phase identifies which sale flow issued a token.
type Phase string

const (
	// PhasePresale is the whitelisted presale.
	PhasePresale Phase = "presale"
	// PhaseRegular is the public sale.
	PhaseRegular Phase = "regular"
	// PhaseFree marks administrator grants.
	PhaseFree Phase = "free"
	// PhaseRemaining marks units minted to the treasury after the sale.
	PhaseRemaining Phase = "remaining"
)
