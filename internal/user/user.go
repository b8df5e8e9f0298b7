package user

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Address is a postal address. Orders snapshot it at checkout time.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type User struct {
	ID        int      `json:"userId"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	FullName  string   `json:"fullName"`
	Phone     string   `json:"phone,omitempty"`
	Role      string   `json:"role"`
	Address   *Address `json:"address,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// FirstName returns the leading word of the full name. Reviews snapshot it
// as the author display name.
func (u User) FirstName() string {
	for i := 0; i < len(u.FullName); i++ {
		if u.FullName[i] == ' ' {
			return u.FullName[:i]
		}
	}
	return u.FullName
}

// Sanitize returns a copy safe to serialize to clients.
func Sanitize(u User) User {
	u.Password = ""
	return u
}
