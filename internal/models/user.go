// Package models defines the NovaBiz domain types stored in the local
// persistent store and exchanged between services and views.
package models

// User is a record in the local user directory. The password is kept in
// plaintext; the store is a private, device-local file and the app has no
// authorization model beyond credential equality.
type User struct {
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	Interests []string `json:"interests"`
}

// HasInterest reports whether the given category is in the user's
// interest set.
func (u *User) HasInterest(category string) bool {
	for _, i := range u.Interests {
		if i == category {
			return true
		}
	}
	return false
}

// ToggleInterest adds the category to the interest set if absent and
// removes it if present.
func (u *User) ToggleInterest(category string) {
	for n, i := range u.Interests {
		if i == category {
			u.Interests = append(u.Interests[:n], u.Interests[n+1:]...)
			return
		}
	}
	u.Interests = append(u.Interests, category)
}

// InterestCategories is the fixed set of startup interest categories a user
// can toggle on their profile.
var InterestCategories = []string{
	"SaaS", "FinTech", "E-commerce", "HealthTech", "EdTech",
	"AI/ML", "Marketing", "Sustainability",
}
