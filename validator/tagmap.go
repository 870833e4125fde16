package validator

var tagMap = map[string]string{
	"required": "required",
	"datetime": "invalid_date_format",
	"pb_name":  "only_ascii_letters_digits_spaces",
	"pb_phone": "must_be_11_digits",
}
