package models

// AddonCategory is the closed set of add-on groupings. Keeping this an
// enumeration makes "category not found" a visible case instead of a silent
// miss on a free-form string key.
type AddonCategory string

const (
	AddonWindows AddonCategory = "windows"
	AddonWheels  AddonCategory = "wheels"
	AddonTrim    AddonCategory = "trim"
	AddonEngine  AddonCategory = "engine"
)

// AllAddonCategories lists every add-on category in display order.
var AllAddonCategories = []AddonCategory{AddonWindows, AddonWheels, AddonTrim, AddonEngine}

// IsValidAddonCategory reports whether c is a known add-on category.
func IsValidAddonCategory(c AddonCategory) bool {
	for _, ac := range AllAddonCategories {
		if ac == c {
			return true
		}
	}
	return false
}

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	PayCard      PaymentMethod = "card"
	PayPaypal    PaymentMethod = "paypal"
	PayApplePay  PaymentMethod = "apple-pay"
	PayGooglePay PaymentMethod = "google-pay"
	PayCash      PaymentMethod = "cash"
	PayCheck     PaymentMethod = "check"
)

// AllPaymentMethods lists every accepted payment method.
var AllPaymentMethods = []PaymentMethod{
	PayCard, PayPaypal, PayApplePay, PayGooglePay, PayCash, PayCheck,
}

// IsValidPaymentMethod reports whether m is an accepted payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	for _, pm := range AllPaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// Schedule is the customer's chosen appointment window: a set of ISO dates
// plus a time-of-day label.
type Schedule struct {
	Dates []string `bson:"dates" json:"dates"`
	Time  string   `bson:"time,omitempty" json:"time,omitempty"`
}

// HasDate reports whether d is already in the schedule.
func (s Schedule) HasDate(d string) bool {
	for _, existing := range s.Dates {
		if existing == d {
			return true
		}
	}
	return false
}

// SelectionModel is the session's mutable wizard state. Categories with no
// selected add-on tier are absent from AddonTiers; "no selection" and "not
// yet visited" are the same state.
type SelectionModel struct {
	Vehicle       VehicleSelection         `bson:"vehicle" json:"vehicle"`
	ServiceTierID string                   `bson:"serviceTierId,omitempty" json:"serviceTierId,omitempty"`
	AddonTiers    map[AddonCategory]string `bson:"addonTiers,omitempty" json:"addonTiers,omitempty"`
	Schedule      Schedule                 `bson:"schedule" json:"schedule"`
	PaymentMethod PaymentMethod            `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
}

// NewSelectionModel returns an empty selection for a fresh wizard session.
func NewSelectionModel() SelectionModel {
	return SelectionModel{}
}
