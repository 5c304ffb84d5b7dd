package models

// User represents an account entity used for authentication and authorization.
// JSON tags mirror the public API field names (Spanish), which double as the
// column names in the "usuarios" table.
// The bcrypt digest in PasswordHash must never leave the server process.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"nombre"`

	// LastName is the user's family name.
	LastName string `json:"apellido"`

	// Role is a free-form role label (e.g. "Administrador", "Mesero").
	Role string `json:"rol"`

	// Email is the unique natural identifier of the account. It is embedded
	// in issued tokens and used for all ownership checks.
	Email string `json:"correo"`

	// Phone is an optional contact phone number.
	Phone string `json:"telefono"`

	// Address is an optional postal address.
	Address string `json:"direccion"`

	// PasswordHash holds the bcrypt digest of the user's password.
	// Excluded from every JSON payload.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuarios"
}

// UserUpdate describes a partial update of a user record. Nil pointer fields
// are absent from the request and must not appear in the generated SET clause.
// Email is the row selector; it is never updatable through this path.
type UserUpdate struct {
	Email     string  `json:"correo"`
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Role      *string `json:"rol"`
	Phone     *string `json:"telefono"`
	Address   *string `json:"direccion"`
}

// Empty reports whether the update carries no fields to apply.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Role == nil &&
		u.Phone == nil && u.Address == nil
}
