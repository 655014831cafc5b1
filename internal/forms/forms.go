// Package forms declares the input schemas of the create forms. Validation
// runs entirely client-side of the API: a form that fails here never produces
// a network call.
package forms

import (
	"net/url"
	"regexp"
	"strconv"
)

type Field struct {
	Name  string
	Label string
	// Wire is the multipart field name the API expects when it differs from
	// the form name (farmer "contact" travels as "phone").
	Wire       string
	Required   bool
	Pattern    *regexp.Regexp
	PatternMsg string
	Positive   bool
}

type Schema []Field

// Validate returns field name -> message for every failing field. An empty
// map means the input may be submitted.
func (s Schema) Validate(values url.Values) map[string]string {
	problems := map[string]string{}
	for _, f := range s {
		v := values.Get(f.Name)
		if v == "" {
			if f.Required {
				problems[f.Name] = f.Label + " is required"
			}
			continue
		}
		if f.Pattern != nil && !f.Pattern.MatchString(v) {
			problems[f.Name] = f.PatternMsg
			continue
		}
		if f.Positive {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				problems[f.Name] = f.Label + " must be a number"
			} else if n <= 0 {
				problems[f.Name] = f.Label + " must be greater than zero"
			}
		}
	}
	return problems
}

// WireValues renames form fields to their wire names and drops everything the
// schema does not declare.
func (s Schema) WireValues(values url.Values) url.Values {
	out := url.Values{}
	for _, f := range s {
		if !values.Has(f.Name) {
			continue
		}
		name := f.Name
		if f.Wire != "" {
			name = f.Wire
		}
		out.Set(name, values.Get(f.Name))
	}
	return out
}

var contactPattern = regexp.MustCompile(`^\d{10}$`)

func Farmer() Schema {
	return Schema{
		{Name: "name", Label: "Farmer name", Required: true},
		{Name: "address", Label: "Address", Required: true},
		{Name: "contact", Label: "Contact number", Wire: "phone", Required: true,
			Pattern: contactPattern, PatternMsg: "Contact must be a 10-digit number"},
		{Name: "landSize", Label: "Land size"},
		{Name: "crops", Label: "Crops"},
	}
}

func Product() Schema {
	return Schema{
		{Name: "product_name", Label: "Product name", Required: true},
		{Name: "description", Label: "Description", Required: true},
		{Name: "price", Label: "Price", Required: true, Positive: true},
		{Name: "product_img", Label: "Product image", Required: true},
		{Name: "catagory", Label: "Category", Required: true},
	}
}
