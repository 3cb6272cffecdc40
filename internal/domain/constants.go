package domain

// Step is the current wizard position.
// The flow is linear: Religion -> KitItems -> Services -> PersonalInfo -> Review -> Confirmation.
type Step int

const (
	StepReligion Step = iota
	StepKitItems
	StepServices
	StepPersonalInfo
	StepReview
	StepConfirmation
)

// stepNames human-readable step labels shown by clients
var stepNames = [...]string{
	"Religion",
	"Kit Items",
	"Services",
	"Personal Info",
	"Review",
	"Confirmation",
}

// String returns the human-readable step label
func (s Step) String() string {
	if s < StepReligion || s > StepConfirmation {
		return "Unknown"
	}
	return stepNames[s]
}

// IsTerminal returns true for the confirmation step
func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

// CurrencySymbol used for all displayed and transmitted amounts
const CurrencySymbol = "₹"
