package initcmd

import "testing"

func TestValidateDomains(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "single domain", text: "example.com"},
		{name: "domain with service", text: "mail.example.com:smtp"},
		{name: "multiple lines with blanks", text: "example.com\n\nmail.example.com:993\n"},
		{name: "empty input", text: "", wantErr: true},
		{name: "only blank lines", text: "\n  \n", wantErr: true},
		{name: "missing hostname before colon", text: ":443", wantErr: true},
		{name: "url instead of hostname", text: "https://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomains(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDomains(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRenewDays(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"30", false},
		{" 14 ", false},
		{"1", false},
		{"3650", false},
		{"0", true},
		{"3651", true},
		{"soon", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateRenewDays(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRenewDays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"10s", false},
		{"1m", false},
		{"500ms", true},
		{"fast", true},
	}

	for _, tt := range tests {
		err := ValidateTimeout(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTimeout(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateConcurrency(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{"50", false},
		{"0", true},
		{"51", true},
		{"many", true},
	}

	for _, tt := range tests {
		err := ValidateConcurrency(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateConcurrency(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
