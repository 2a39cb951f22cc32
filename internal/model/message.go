package model

import "time"

// ContactMessage is a message submitted through the public contact form.
// Messages are created unread; only admins flip the read flag or delete
// them.  This struct corresponds to a row in the `contact_messages` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – sender name.
//  Email     – sender email.
//  Phone     – sender phone.
//  Message   – free-text body.
//  Read      – whether an admin has read the message (default false).
//  CreatedAt – creation timestamp.
type ContactMessage struct {
	ID        uint64    // contact_messages.id
	Name      string    // contact_messages.name
	Email     string    // contact_messages.email
	Phone     string    // contact_messages.phone
	Message   string    // contact_messages.message
	Read      bool      // contact_messages.is_read
	CreatedAt time.Time // contact_messages.created_at
}
