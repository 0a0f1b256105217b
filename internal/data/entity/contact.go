package entity

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusResponded ContactStatus = "responded"
)

type Contact struct {
	Base
	Name    string        `db:"name"`
	Email   string        `db:"email"`
	Phone   *string       `db:"phone"`
	Subject string        `db:"subject"`
	Message string        `db:"message"`
	Status  ContactStatus `db:"status"`
}
