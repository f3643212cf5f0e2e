package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	BalanceRepoName     RepositoryName = "balance"
	TransactionRepoName RepositoryName = "transaction"
	SettingRepoName     RepositoryName = "setting"
	PromotionRepoName   RepositoryName = "promotion"
	PurchaseRepoName    RepositoryName = "purchase_request"
	LotteryRepoName     RepositoryName = "lottery"
)
