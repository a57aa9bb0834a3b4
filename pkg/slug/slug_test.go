package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"Hello World", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"café latte", "cafe-latte"},
		{"naïve résumé", "naive-resume"},
		{"btn.save_label", "btn-save-label"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces!!", "multiple-spaces"},
		{"UPPER_case-42", "upper-case-42"},
		{"", ""},
		{"---", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Make(c.in), "Make(%q)", c.in)
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "café latte", "btn.save_label"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}
