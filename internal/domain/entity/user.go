package entity

import "strings"

// User usuario del sistema (tabla usuarios).
// Pass guarda un hash bcrypt; filas heredadas pueden contener el texto plano.
type User struct {
	ID      int64
	Usuario string
	Pass    string
}

// HasHashedPassword indica si Pass tiene formato bcrypt ($2a$, $2b$, $2y$).
func (u *User) HasHashedPassword() bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(u.Pass, prefix) {
			return true
		}
	}
	return false
}
