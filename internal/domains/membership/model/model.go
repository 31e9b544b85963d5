package model

import (
	"time"

	"studio/shared/model"
)

const (
	MemberTypeTableName  = "member_types"
	MemberTypeEntityName = "member_type"

	StudentTableName  = "students"
	StudentEntityName = "student"

	StudentCardTableName  = "student_cards"
	StudentCardEntityName = "student_card"

	FieldID            = "id"
	FieldStudentID     = "student_id"
	FieldRemainingUses = "remaining_uses"
)

type MemberType struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Audience    string `db:"audience"`
	PricingType string `db:"pricing_type"`
	TotalUses   *int   `db:"total_uses"`
	ValidDays   int    `db:"valid_days"`
	Price       int    `db:"price"`
	model.Metadata
}

type Student struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Phone        string  `db:"phone"`
	Gender       string  `db:"gender"`
	Age          int     `db:"age"`
	StudentType  string  `db:"student_type"`
	GuardianName *string `db:"guardian_name"`
	model.Metadata
}

// StudentCard is a membership instance bound to a student. A nil
// RemainingUses means unlimited uses until expiry.
type StudentCard struct {
	ID            string    `db:"id"`
	StudentID     string    `db:"student_id"`
	MemberTypeID  string    `db:"member_type_id"`
	ValidUntil    time.Time `db:"valid_until"`
	RemainingUses *int      `db:"remaining_uses"`
	Active        bool      `db:"active"`
	model.Metadata
}
