package client

import "dipadubank/internal/models"

func BankAccounts(c *Client) *Resource[models.BankAccount] {
	return NewResource[models.BankAccount](c, "bank-accounts")
}

func Companies(c *Client) *Resource[models.Company] {
	return NewResource[models.Company](c, "companies")
}

func CryptoTransactions(c *Client) *Resource[models.CryptoTransaction] {
	return NewResource[models.CryptoTransaction](c, "crypto-transactions")
}

func CryptoWallets(c *Client) *Resource[models.CryptoWallet] {
	return NewResource[models.CryptoWallet](c, "crypto-wallets")
}

func TransactionHistories(c *Client) *Resource[models.TransactionHistory] {
	return NewResource[models.TransactionHistory](c, "transaction-histories")
}

func Users(c *Client) *Resource[models.User] {
	return NewResource[models.User](c, "users")
}

func UserProfiles(c *Client) *Resource[models.UserProfile] {
	return NewResource[models.UserProfile](c, "user-profiles")
}

// Records is the untyped SDK for route, used where fields are handled generically
func Records(c *Client, route string) *Resource[map[string]interface{}] {
	return NewResource[map[string]interface{}](c, route)
}
