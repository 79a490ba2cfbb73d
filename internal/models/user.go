package models

// User represents the user model in the database. Accounts are identified
// by their bank account number; the password hash never leaves the server.
type User struct {
	Base
	AccountName   string   `gorm:"not null" json:"account_name"`
	AccountNumber string   `gorm:"uniqueIndex;not null" json:"account_number"`
	IFSC          string   `gorm:"not null" json:"ifsc"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Budgets       []Budget `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}

// MemberProfile is the safe subset of a user exposed to fellow group members.
// Budgets and credential material are never included.
type MemberProfile struct {
	ID            string `json:"id"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
}

// Profile returns the user's safe display profile.
func (u *User) Profile() MemberProfile {
	return MemberProfile{
		ID:            u.ID,
		AccountName:   u.AccountName,
		AccountNumber: u.AccountNumber,
		IFSC:          u.IFSC,
	}
}
