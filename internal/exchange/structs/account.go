package structs

type Asset struct {
	Asset            string `json:"asset"`
	WalletBalance    string `json:"walletBalance"`
	UnrealizedProfit string `json:"unrealizedProfit"`
	MarginBalance    string `json:"marginBalance"`
	AvailableBalance string `json:"availableBalance"`
	UpdateTime       int64  `json:"updateTime"`
}

type Account struct {
	TotalWalletBalance    string  `json:"totalWalletBalance"`
	TotalUnrealizedProfit string  `json:"totalUnrealizedProfit"`
	TotalMarginBalance    string  `json:"totalMarginBalance"`
	AvailableBalance      string  `json:"availableBalance"`
	CanTrade              bool    `json:"canTrade"`
	CanDeposit            bool    `json:"canDeposit"`
	CanWithdraw           bool    `json:"canWithdraw"`
	UpdateTime            int64   `json:"updateTime"`
	Assets                []Asset `json:"assets"`
}
