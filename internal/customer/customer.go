package customer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

// Segment tags the membership program a customer belongs to.
type Segment string

const (
	SegmentRegular Segment = "regular"
	SegmentMember  Segment = "member"
	SegmentPremium Segment = "premium"
	SegmentVIP     Segment = "vip"
)

// ParseSegment validates a segment tag. The empty string means regular.
func ParseSegment(s string) (Segment, error) {
	switch seg := Segment(strings.ToLower(strings.TrimSpace(s))); seg {
	case "":
		return SegmentRegular, nil
	case SegmentRegular, SegmentMember, SegmentPremium, SegmentVIP:
		return seg, nil
	default:
		return "", errs.InvalidArgumentf("unknown customer segment %q", s)
	}
}

// Tier ranks premium members by accumulated points.
type Tier string

const (
	TierNone     Tier = ""
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// TierFor derives the tier from a points balance.
func TierFor(points int) Tier {
	switch {
	case points >= 10000:
		return TierPlatinum
	case points >= 5000:
		return TierGold
	case points >= 1000:
		return TierSilver
	default:
		return TierBronze
	}
}

const (
	SeniorAge       = 60
	adultAge        = 18
	maxAge          = 150
	memberRate      = 0.05
	vipRate         = 0.25
	unknownTierRate = 0.05
)

var tierRates = map[Tier]float64{
	TierBronze:   0.07,
	TierSilver:   0.10,
	TierGold:     0.15,
	TierPlatinum: 0.20,
}

// Customer is the shopper a cart belongs to. Only the fields the pricing
// rules read live here; record management happens elsewhere.
type Customer struct {
	Name              string
	Age               int
	Segment           Segment
	Points            int
	PersonalAssistant string // VIP only
}

// New validates and normalizes a customer record.
func New(name string, age int, segment Segment, points int) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.InvalidArgument("customer name must not be empty")
	}

	if age < 0 || age > maxAge {
		return nil, errs.InvalidArgumentf("customer age must be between 0 and %d, got %d", maxAge, age)
	}

	if _, err := ParseSegment(string(segment)); err != nil {
		return nil, err
	}

	if points < 0 {
		return nil, errs.InvalidArgumentf("points must not be negative, got %d", points)
	}

	if segment == "" {
		segment = SegmentRegular
	}

	return &Customer{
		Name:    cases.Title(language.Indonesian).String(name),
		Age:     age,
		Segment: segment,
		Points:  points,
	}, nil
}

func (c *Customer) IsMember() bool {
	return c.Segment != SegmentRegular
}

func (c *Customer) IsSenior() bool {
	return c.Age >= SeniorAge
}

// Tier is only meaningful for premium and VIP customers.
func (c *Customer) Tier() Tier {
	switch c.Segment {
	case SegmentPremium, SegmentVIP:
		return TierFor(c.Points)
	default:
		return TierNone
	}
}

// AddPoints credits a positive number of points; the tier follows automatically.
func (c *Customer) AddPoints(points int) error {
	if points <= 0 {
		return errs.InvalidArgumentf("points to add must be positive, got %d", points)
	}

	c.Points += points

	return nil
}

// Upgrade turns a regular customer into a member. It reports false if the
// customer already belongs to a membership segment.
func (c *Customer) Upgrade() bool {
	if c.IsMember() {
		return false
	}

	c.Segment = SegmentMember

	return true
}

func (c *Customer) AgeCategory() string {
	switch {
	case c.Age < adultAge:
		return "child"
	case c.Age < SeniorAge:
		return "adult"
	default:
		return "senior"
	}
}

// Type is the label shown on receipts and reports.
func (c *Customer) Type() string {
	switch c.Segment {
	case SegmentMember:
		return "Member"
	case SegmentPremium:
		return "Premium " + string(c.Tier())
	case SegmentVIP:
		return "VIP"
	default:
		return "Regular"
	}
}

// DiscountRate is the membership discount rate for a customer. VIP overrides
// the tier table; non-members get nothing.
func DiscountRate(segment Segment, points int) float64 {
	switch segment {
	case SegmentMember:
		return memberRate
	case SegmentPremium:
		if rate, ok := tierRates[TierFor(points)]; ok {
			return rate
		}

		return unknownTierRate
	case SegmentVIP:
		return vipRate
	default:
		return 0
	}
}

// Snapshot is a point-in-time copy of the fields a transaction records.
type Snapshot struct {
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Segment Segment `json:"segment"`
	Tier    Tier    `json:"tier,omitempty"`
	Points  int     `json:"points"`
	Type    string  `json:"type"`
}

func (c *Customer) Snapshot() Snapshot {
	return Snapshot{
		Name:    c.Name,
		Age:     c.Age,
		Segment: c.Segment,
		Tier:    c.Tier(),
		Points:  c.Points,
		Type:    c.Type(),
	}
}
