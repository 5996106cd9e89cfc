package cmd

type Config struct {
	DefaultLocale     string
	ManualOrderLocale string
	CustomerName      string
}
