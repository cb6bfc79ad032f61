package wallet

// TransactionInfo is a transaction as reported to API clients.
// Value is scaled by the coin's decimals.
type TransactionInfo struct {
	Sender        string `json:"sender"`
	Receiver      string `json:"receiver"`
	TxHash        string `json:"txHash"`
	Value         string `json:"value"`
	BlockHeight   int64  `json:"blockHeight"`
	BlockTime     int64  `json:"blockTime"`
	Contract      string `json:"contract"`
	IsValid       bool   `json:"isValid"`
	ConfirmNumber uint64 `json:"confirmNumber"`
}

// ProjectInfo is a project with the settings of each coin it holds
type ProjectInfo struct {
	ProjectID   uint64            `json:"projectId"`
	Name        string            `json:"name"`
	CallbackURL string            `json:"callbackUrl"`
	AccessKey   string            `json:"accessKey"`
	PublicKey   string            `json:"publicKey"`
	Coins       []ProjectCoinInfo `json:"coins"`
}

// ProjectCoinInfo is the per coin section of ProjectInfo
type ProjectCoinInfo struct {
	CoinID            uint64 `json:"coinId"`
	CoinName          string `json:"coinName"`
	HotAddress        string `json:"hotAddress"`
	CollectionAddress string `json:"collectionAddress"`
	RenderAddress     string `json:"renderAddress"`
	Fee               string `json:"fee"`
	IsDeposit         bool   `json:"isDeposit"`
	IsWithdraw        bool   `json:"isWithdraw"`
	IsCollect         bool   `json:"isCollect"`
}
