package tools

type AccumulateInput struct {
	From *int `json:"from,omitempty" jsonschema:"inclusive lower bound, defaults to 0"`
	To   *int `json:"to,omitempty"   jsonschema:"exclusive upper bound, defaults to 100"`
}

type AccumulateOutput struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Result int `json:"result"`
}

type ClassifyInput struct {
	Value int `json:"value" jsonschema:"integer to classify by sign"`
}

type ClassifyOutput struct {
	Value int    `json:"value"`
	Sign  string `json:"sign"`
}

type FactorialInput struct {
	N int `json:"n" jsonschema:"input to the factorial; values <= 1 return 1"`
}

type FactorialOutput struct {
	N     int `json:"n"`
	Value int `json:"value"`
}

type ReportInput struct {
	From *int `json:"from,omitempty" jsonschema:"inclusive lower bound, defaults to 0"`
	To   *int `json:"to,omitempty"   jsonschema:"exclusive upper bound, defaults to 100"`
}

type ReportOutput struct {
	From   int      `json:"from"`
	To     int      `json:"to"`
	Result int      `json:"result"`
	Sign   string   `json:"sign"`
	Lines  []string `json:"lines" jsonschema:"the two lines printed by the default run"`
}
