package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/anorlov/vaultshare/internal/service"
	"github.com/anorlov/vaultshare/models"
)

// addOptions collects the flag values of the add command. Which fields
// matter depends on the chosen entry type.
type addOptions struct {
	entryType string
	folder    string
	notes     string
	tags      []string

	// login
	username string
	password string
	url      string

	// card
	cardNumber string
	expiry     string
	holder     string

	// identity
	firstName string
	lastName  string
	phone     string

	// bank account
	bankName      string
	accountNumber string
	routingNumber string
}

func (a *App) addCmd() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an entry to the vault",
		Long: `Adds one entry to the vault and saves the re-encrypted snapshot.

Login entries take --username/--password/--url; secure notes take --notes;
cards take --number/--expiry/--holder (CVV is prompted); identities take
--first/--last/--phone; bank accounts take --bank/--number/--routing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(session *service.Session) error {
				vault, err := a.services.VaultService.Load(cmd.Context(), session)
				if err != nil {
					return err
				}

				entry, err := a.buildEntry(args[0], opts)
				if err != nil {
					return err
				}

				vault.Entries = append(vault.Entries, entry)
				a.services.Saver.Schedule(session, vault)

				fmt.Fprintf(a.out, "%s added %s entry %s (%s)\n",
					color.GreenString("✓"), entry.Type, color.YellowString(entry.Name), shortID(entry.ID))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.entryType, "type", "t", string(models.EntryLogin),
		"entry type: login, secure-note, credit-card, identity or bank-account")
	cmd.Flags().StringVarP(&opts.notes, "notes", "n", "", "free-form notes")
	cmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "folder to file the entry into")
	cmd.Flags().StringSliceVar(&opts.tags, "tags", nil, "comma-separated tags")

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "login username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "login password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.url, "url", "", "login site URL")

	cmd.Flags().StringVar(&opts.cardNumber, "number", "", "card or account number")
	cmd.Flags().StringVar(&opts.expiry, "expiry", "", "card expiry date (MM/YY)")
	cmd.Flags().StringVar(&opts.holder, "holder", "", "cardholder name")

	cmd.Flags().StringVar(&opts.firstName, "first", "", "identity first name")
	cmd.Flags().StringVar(&opts.lastName, "last", "", "identity last name")
	cmd.Flags().StringVar(&opts.phone, "phone", "", "identity phone number")

	cmd.Flags().StringVar(&opts.bankName, "bank", "", "bank name")
	cmd.Flags().StringVar(&opts.routingNumber, "routing", "", "bank routing number")

	return cmd
}

func (a *App) buildEntry(name string, opts addOptions) (models.Entry, error) {
	now := time.Now()
	entry := models.Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Notes:     opts.notes,
		Folder:    opts.folder,
		Tags:      opts.tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch models.EntryType(opts.entryType) {
	case models.EntryLogin:
		password := opts.password
		if password == "" {
			var err error
			if password, err = a.readPassword("Entry password: "); err != nil {
				return models.Entry{}, err
			}
		}
		entry.Type = models.EntryLogin
		entry.Login = &models.LoginData{
			SiteName: name,
			URL:      opts.url,
			Username: opts.username,
			Password: password,
		}

	case models.EntryNote:
		entry.Type = models.EntryNote
		entry.Note = &models.NoteData{}

	case models.EntryCard:
		cvv, err := a.readPassword("Card CVV: ")
		if err != nil {
			return models.Entry{}, err
		}
		entry.Type = models.EntryCard
		entry.Card = &models.CardData{
			CardholderName: opts.holder,
			CardNumber:     opts.cardNumber,
			ExpiryDate:     opts.expiry,
			CVV:            cvv,
		}

	case models.EntryIdentity:
		entry.Type = models.EntryIdentity
		entry.Identity = &models.IdentityData{
			FirstName: opts.firstName,
			LastName:  opts.lastName,
			Phone:     opts.phone,
		}

	case models.EntryBankAccount:
		entry.Type = models.EntryBankAccount
		entry.BankAccount = &models.BankAccountData{
			BankName:      opts.bankName,
			AccountNumber: opts.cardNumber,
			RoutingNumber: opts.routingNumber,
		}

	default:
		return models.Entry{}, fmt.Errorf("unsupported entry type %q", opts.entryType)
	}

	if err := entry.Validate(); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}
