package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Ritsch1/devops-capstone-project/internal/app"
	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// accountRecord is the JSON line printed for every account
type accountRecord struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  string `json:"date_joined"`
}

func newAccountRecord(a *accounts.Account) accountRecord {
	return accountRecord{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined.Format(accounts.DateLayout),
	}
}

// AccountCommandHandler encapsulates logic for handling account operations via CLI.
type AccountCommandHandler struct {
	// withService opens the account service for the duration of fn
	withService func(cmd *cobra.Command, fn func(accounts.AccountService, logger.Logger) error) error
}

// NewAccountCommandHandler returns a handler that works on the configured database
func NewAccountCommandHandler() *AccountCommandHandler {
	return &AccountCommandHandler{withService: withDatabaseService}
}

func withDatabaseService(cmd *cobra.Command, fn func(accounts.AccountService, logger.Logger) error) error {
	db, log, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create account repository: %w", err)
	}

	accountService, err := app.NewAccountService(accountRepo, log)
	if err != nil {
		return fmt.Errorf("failed to create account service: %w", err)
	}

	return fn(accountService, log)
}

// ListAccountsCmd prints the accounts matching the filter flags
func (commandHandler *AccountCommandHandler) ListAccountsCmd(cmd *cobra.Command, _ []string) error {
	query := accounts.NewAccountQuery()

	var err error
	if query.Name, err = cmd.Flags().GetString("name"); err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if query.Email, err = cmd.Flags().GetString("email"); err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}
	if query.Offset, err = cmd.Flags().GetInt("offset"); err != nil {
		return fmt.Errorf("invalid offset flag: %w", err)
	}
	if query.SortBy, err = cmd.Flags().GetString("sort-by"); err != nil {
		return fmt.Errorf("invalid sort-by flag: %w", err)
	}
	if query.SortOrder, err = cmd.Flags().GetString("sort-order"); err != nil {
		return fmt.Errorf("invalid sort-order flag: %w", err)
	}

	return commandHandler.withService(cmd, func(service accounts.AccountService, _ logger.Logger) error {
		accountList, err := service.List(cmd.Context(), query)
		if err != nil {
			return err
		}
		return printAccounts(cmd.OutOrStdout(), accountList...)
	})
}

// GetAccountCmd prints a single account
func (commandHandler *AccountCommandHandler) GetAccountCmd(cmd *cobra.Command, args []string) error {
	accountID, err := parseAccountID(args[0])
	if err != nil {
		return err
	}

	return commandHandler.withService(cmd, func(service accounts.AccountService, _ logger.Logger) error {
		account, err := service.GetByID(cmd.Context(), accountID)
		if err != nil {
			return err
		}
		return printAccounts(cmd.OutOrStdout(), account)
	})
}

// CreateAccountCmd creates an account from the flags and prints it
func (commandHandler *AccountCommandHandler) CreateAccountCmd(cmd *cobra.Command, _ []string) error {
	account := &accounts.Account{}

	var err error
	if account.Name, err = cmd.Flags().GetString("name"); err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if account.Email, err = cmd.Flags().GetString("email"); err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if account.Address, err = cmd.Flags().GetString("address"); err != nil {
		return fmt.Errorf("invalid address flag: %w", err)
	}
	if account.PhoneNumber, err = cmd.Flags().GetString("phone-number"); err != nil {
		return fmt.Errorf("invalid phone-number flag: %w", err)
	}

	dateJoined, err := cmd.Flags().GetString("date-joined")
	if err != nil {
		return fmt.Errorf("invalid date-joined flag: %w", err)
	}
	if dateJoined != "" {
		if account.DateJoined, err = accounts.ParseDate(dateJoined); err != nil {
			return err
		}
	}

	return commandHandler.withService(cmd, func(service accounts.AccountService, log logger.Logger) error {
		created, err := service.Create(cmd.Context(), account)
		if err != nil {
			return err
		}
		log.Info("Account created with id ", created.ID)
		return printAccounts(cmd.OutOrStdout(), created)
	})
}

// DeleteAccountCmd removes an account; deleting a missing account succeeds
func (commandHandler *AccountCommandHandler) DeleteAccountCmd(cmd *cobra.Command, args []string) error {
	accountID, err := parseAccountID(args[0])
	if err != nil {
		return err
	}

	return commandHandler.withService(cmd, func(service accounts.AccountService, log logger.Logger) error {
		if err := service.DeleteByID(cmd.Context(), accountID); err != nil {
			return err
		}
		log.Info("Account with id ", accountID, " deleted")
		return nil
	})
}

func parseAccountID(rawID string) (uint, error) {
	id, err := strconv.ParseUint(rawID, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %w", rawID, err)
	}
	return uint(id), nil
}

func printAccounts(w io.Writer, accountList ...*accounts.Account) error {
	encoder := json.NewEncoder(w)
	for _, account := range accountList {
		if err := encoder.Encode(newAccountRecord(account)); err != nil {
			return fmt.Errorf("failed to write account: %w", err)
		}
	}
	return nil
}

// InitAccountCommands registers the account management commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	return initAccountCommands(rootCmd, NewAccountCommandHandler())
}

func initAccountCommands(rootCmd *cobra.Command, handler *AccountCommandHandler) error {
	var accountsCmd = &cobra.Command{
		Use:   "accounts",
		Short: "Manage customer accounts",
	}
	rootCmd.AddCommand(accountsCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE:  handler.ListAccountsCmd,
	}
	listCmd.Flags().StringP("name", "", "", "Only list accounts with this exact name")
	listCmd.Flags().StringP("email", "", "", "Only list accounts with this exact email")
	listCmd.Flags().IntP("limit", "", 0, "Maximum number of accounts (0 lists all)")
	listCmd.Flags().IntP("offset", "", 0, "Number of accounts to skip")
	listCmd.Flags().StringP("sort-by", "", "id", "Sort column: id, name, email or date_joined")
	listCmd.Flags().StringP("sort-order", "", accounts.SortOrderAsc, "Sort order: asc or desc")
	accountsCmd.AddCommand(listCmd)

	var getCmd = &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.GetAccountCmd,
	}
	accountsCmd.AddCommand(getCmd)

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateAccountCmd,
	}
	createCmd.Flags().StringP("name", "", "", "Account holder name")
	createCmd.Flags().StringP("email", "", "", "Account email")
	createCmd.Flags().StringP("address", "", "", "Postal address")
	createCmd.Flags().StringP("phone-number", "", "", "Optional phone number")
	createCmd.Flags().StringP("date-joined", "", "", "Join date as YYYY-MM-DD (default today)")
	for _, name := range []string{"name", "email", "address"} {
		if err := createCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s as required: %w", name, err)
		}
	}
	accountsCmd.AddCommand(createCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteAccountCmd,
	}
	accountsCmd.AddCommand(deleteCmd)

	return nil
}
