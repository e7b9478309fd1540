package config

func Development() bool {
	development := v.GetString("development")
	return development != "" && development != "0"
}
