package tickets

import (
	"errors"
	"strings"

	"booking/common"

	"github.com/guregu/null/v5"
)

// TicketForm is the submitted add or edit form.
// Extra holds every other posted field and is stored as-is.
type TicketForm struct {
	ID    string         `form:"id" validate:"required,max=64"`
	Name  string         `form:"name" validate:"required,max=255"`
	NoHP  string         `form:"nohp" validate:"required,mobile_id"`
	Extra map[string]any `form:"-" validate:"-"`
}

type DeleteForm struct {
	Name string `form:"name" binding:"required"`
}

// FieldError is one user-correctable problem with a form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned by the service when a form must be shown again.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// HasField reports whether any error refers to field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

var ErrTicketNotFound = errors.New("ticket not found")

// User-facing texts.
const (
	MsgDuplicateID   = "ID/NIK sudah digunakan!"
	MsgInvalidPhone  = "Bukan nomor HP"
	MsgNotFound      = "Tiket tidak ditemukan"
	MsgCreated       = "Data ticket berhasil ditambahkan!"
	MsgDeleted       = "Ticket berhasil dihapus!"
	MsgUpdated       = "Data ticket berhasil diubah!"
	MsgCreateFailed  = "Gagal menambahkan data tiket"
	MsgDeleteFailed  = "Gagal menghapus tiket"
	MsgUpdateFailed  = "Terjadi kesalahan dalam memperbarui data tiket"
	MsgFetchFailed   = "Terjadi kesalahan dalam mengambil data tiket"
	MsgInvalidForm   = "Form tidak valid"
	TitleList        = "Halaman Pemesanan Ticket"
	TitleAdd         = "Form Pemesanan Ticket"
	TitleEdit        = "Form Edit Data Ticket"
	TitleDetail      = "Halaman Detail"
	reservedNameAdd  = "add"
	reservedNameEdit = "edit"
)

// listPage is the template context of the listing page.
type listPage struct {
	Title   string
	Tickets []common.Ticket
	Msg     null.String
}
