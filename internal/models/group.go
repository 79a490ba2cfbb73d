package models

// Group represents a shared-expense group. The creator is always a member,
// and every member has exactly one contribution entry.
type Group struct {
	Base
	Name          string         `gorm:"not null" json:"name"`
	CreatedBy     string         `gorm:"type:uuid;not null;index" json:"created_by"`
	Purpose       string         `json:"purpose,omitempty"`
	Members       []User         `gorm:"many2many:group_members" json:"-"`
	Contributions []Contribution `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"contributions"`
	Expenses      []Expense      `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
}

// Contribution tracks the cumulative amount a member has paid within a group.
// The ledger is additive: expense postings only ever increment AmountPaid.
type Contribution struct {
	GroupID    string  `gorm:"type:uuid;primaryKey" json:"-"`
	MemberID   string  `gorm:"type:uuid;primaryKey" json:"member_id"`
	AmountPaid float64 `gorm:"not null;default:0" json:"amount_paid"`
}

// IsMember reports whether the given user is a current member of the group.
// Members must be preloaded.
func (g *Group) IsMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// ContributionFor returns the contribution entry for the given member, or nil.
func (g *Group) ContributionFor(memberID string) *Contribution {
	for i := range g.Contributions {
		if g.Contributions[i].MemberID == memberID {
			return &g.Contributions[i]
		}
	}
	return nil
}
