// Package messages parses message catalogues: mappings from rule name to the
// default error message template of that rule, as accepted by
// validator.WithMessages and (*validator.Validator).AddMessages.
//
// Catalogues are flat YAML or JSON objects:
//
//	required: "{title} is required"
//	min: "{title} must be at least {0}"
//	between: "{title} must be between {0} and {1}"
//
// The package only parses content handed to it; reading files is left to the
// caller (embed.FS, os.ReadFile, ...).
//
// # Usage
//
//	//go:embed messages.yaml
//	var catalogue string
//
//	msgs, err := messages.NewYAMLParser().Parse(ctx, catalogue)
//	if err != nil {
//	    return err
//	}
//	v := validator.New(nil, validator.WithMessages(msgs))
package messages
