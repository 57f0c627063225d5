package web

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	modeAdd  = "add"
	modeEdit = "edit"
)

// values holds one form's inputs keyed by field name, exactly as submitted or
// as formatted from a stored row.
type values map[string]string

type option struct {
	Value    string
	Label    string
	Selected bool
}

// fieldSpec declares one input of an edit form.
type fieldSpec struct {
	name        string
	label       string
	kind        string // text, email, tel, number, date, datetime-local, password, select, textarea, checkbox
	required    bool
	section     string
	step        string
	placeholder string
	readOnly    bool
	options     func() ([]option, error)
}

// field is a fieldSpec resolved against values for rendering.
type field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Message     string
	Section     string
	Step        string
	Placeholder string
	Required    bool
	Invalid     bool
	Checked     bool
	ReadOnly    bool
	Options     []option
}

type formView struct {
	Title       string
	Heading     string
	Mode        string
	Action      string
	BackLink    string
	Error       string
	Success     string
	ShowForm    bool
	DeleteField string
	CSRFToken   string
	Fields      []field
}

func parseValues(c *fiber.Ctx, specs []fieldSpec) values {
	v := values{}
	for _, s := range specs {
		raw := c.FormValue(s.name)
		switch s.kind {
		case "checkbox":
			if raw != "" {
				v[s.name] = "1"
			}
		case "password":
			v[s.name] = raw
		default:
			v[s.name] = strings.TrimSpace(raw)
		}
	}
	return v
}

func buildFields(specs []fieldSpec, v values, invalid map[string]string) ([]field, error) {
	out := make([]field, 0, len(specs))
	for _, s := range specs {
		f := field{
			Name:        s.name,
			Label:       s.label,
			Type:        s.kind,
			Value:       v[s.name],
			Section:     s.section,
			Step:        s.step,
			Placeholder: s.placeholder,
			Required:    s.required,
			ReadOnly:    s.readOnly,
		}
		if s.kind == "password" {
			f.Value = ""
		}
		if msg, ok := invalid[s.name]; ok {
			f.Invalid = true
			f.Message = msg
		}
		if s.kind == "checkbox" {
			f.Checked = v[s.name] == "1"
		}
		if s.options != nil {
			opts, err := s.options()
			if err != nil {
				return nil, err
			}
			for i := range opts {
				opts[i].Selected = opts[i].Value == f.Value
			}
			f.Options = opts
		}
		out = append(out, f)
	}
	return out, nil
}

// missingRequired marks every empty required field with msg.
func missingRequired(specs []fieldSpec, v values, msg string) map[string]string {
	invalid := map[string]string{}
	for _, s := range specs {
		if s.required && v[s.name] == "" {
			invalid[s.name] = msg
		}
	}
	return invalid
}

func staticOptions(items ...string) func() ([]option, error) {
	return func() ([]option, error) {
		opts := make([]option, len(items))
		for i, it := range items {
			opts[i] = option{Value: it, Label: it}
		}
		return opts, nil
	}
}

func checkbox(b bool) string {
	if b {
		return "1"
	}
	return ""
}

func formatUint(n uint) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(n), 10)
}

func formatUintPtr(n *uint) string {
	if n == nil {
		return ""
	}
	return formatUint(*n)
}

func parseUint(s string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func parseUintPtr(s string) *uint {
	n := parseUint(s)
	if n == 0 {
		return nil
	}
	return &n
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

// formatMoney renders an amount for a charge input; zero renders empty.
func formatMoney(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
