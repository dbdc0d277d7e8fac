package version

const Value = "1.2.0"

func ServerHeader() string {
	return "cosmic/" + Value
}
