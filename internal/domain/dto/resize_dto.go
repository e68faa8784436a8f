package dto

type VariantDTO struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Key      string `json:"key,omitempty"`
	Location string `json:"location,omitempty"`
	Size     int    `json:"size"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

type ReportDTO struct {
	Source    string       `json:"source"`
	Subfolder string       `json:"subfolder"`
	Bytes     int          `json:"bytes"`
	Status    string       `json:"status"`
	Reason    string       `json:"reason,omitempty"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Variants  []VariantDTO `json:"variants,omitempty"`
}

// InvocationResponse is returned by the lambda handler and the events endpoint.
type InvocationResponse struct {
	Records int         `json:"records"`
	Reports []ReportDTO `json:"reports"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
