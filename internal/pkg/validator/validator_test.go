package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "rajesh@vishwakarma.com"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"14:30", 870, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"09:60", 0, false},
		{"", 0, false},
		{"morning", 0, false},
	}
	for _, c := range cases {
		minutes, ok := IsValidClock(c.input)
		if ok != c.ok || minutes != c.minutes {
			t.Errorf("IsValidClock(%q) = (%d, %v), want (%d, %v)", c.input, minutes, ok, c.minutes, c.ok)
		}
	}
}

func TestValidationErrorsMessages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "Employee ID required"},
		{Field: "email", Message: "Invalid email"},
	}
	msgs := errs.Messages()
	if len(msgs) != 2 || msgs[0] != "Employee ID required" || msgs[1] != "Invalid email" {
		t.Errorf("Messages() = %v", msgs)
	}
	if errs.Error() != "employee_id: Employee ID required; email: Invalid email" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
