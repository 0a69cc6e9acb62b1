package responses

// GasEstimateResponse is the success envelope for every handling mode.
// EstimatedGas, GasPrice and EstimatedFeeInETH are always present.
type GasEstimateResponse struct {
	Message           string      `json:"message,omitempty"`
	EstimatedGas      string      `json:"estimatedGas"`
	GasPrice          string      `json:"gasPrice"`
	EstimatedFeeInETH string      `json:"estimatedFeeInETH"`
	Result            interface{} `json:"result,omitempty"`
}

// BlockSummary is the projection of a chain block returned by getLatestBlocks
type BlockSummary struct {
	Number       uint64 `json:"number"`
	Timestamp    string `json:"timestamp"`
	Transactions int    `json:"transactions"`
	Hash         string `json:"hash"`
	Validator    string `json:"validator"`
}
