package utils

import "testing"

func TestDiffDays(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "2024-03-01", "2024-03-01", 0},
		{"next day", "2024-03-01", "2024-03-02", 1},
		{"eight day gap", "2024-03-02", "2024-03-10", 8},
		{"backward", "2024-03-02", "2024-03-01", -1},
		{"across month boundary", "2024-02-29", "2024-03-01", 1},
		{"across year boundary", "2023-12-31", "2024-01-01", 1},
		{"across dst change", "2024-03-09", "2024-03-11", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiffDays(tt.from, tt.to)
			if err != nil {
				t.Fatalf("DiffDays(%q, %q) returned error: %v", tt.from, tt.to, err)
			}
			if got != tt.want {
				t.Errorf("DiffDays(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDiffDaysInvalidInput(t *testing.T) {
	if _, err := DiffDays("", "2024-03-01"); err == nil {
		t.Error("expected error for empty from date")
	}
	if _, err := DiffDays("2024-03-01", "03/02/2024"); err == nil {
		t.Error("expected error for malformed to date")
	}
}

func TestValidateDateFormat(t *testing.T) {
	valid := []string{"2024-03-01", "2000-01-01", "2024-12-31"}
	for _, d := range valid {
		if !ValidateDateFormat(d) {
			t.Errorf("expected %q to be valid", d)
		}
	}

	invalid := []string{"", "2024-3-1", "2024/03/01", "March 1, 2024", "2024-13-01"}
	for _, d := range invalid {
		if ValidateDateFormat(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"", "Local", "Asia/Kolkata", "UTC"} {
		if !ValidateTimezone(tz) {
			t.Errorf("expected timezone %q to be valid", tz)
		}
	}
	if ValidateTimezone("Mars/Olympus_Mons") {
		t.Error("expected unknown timezone to be invalid")
	}
}
