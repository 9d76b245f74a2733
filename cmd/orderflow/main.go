package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"orderflow/config"
	"orderflow/internal/api"
	"orderflow/internal/domain/entity"
	"orderflow/internal/domain/storage"
	"orderflow/internal/i18n"
	logs "orderflow/internal/infra/log"
	infrastorage "orderflow/internal/infra/storage"
	"orderflow/internal/usecase"
	"orderflow/internal/usecase/impl"

	"go.uber.org/fx"
)

const usage = `usage: orderflow <command> [flags]

commands:
  login     authenticate and persist the session
  register  create a supplier owner account and sign in
  whoami    show the current session
  refresh   re-fetch the session profile
  products  list the session supplier's products
  locale    show or change the display language
  logout    clear the session
`

type runParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Session    usecase.SessionUsecase
	Locale     usecase.LocaleUsecase
	Catalog    usecase.CatalogUsecase
	Logger     *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectUsecase(),
		fx.Invoke(
			runCommand,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
		api.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLocaleService,
			impl.NewCatalogService,
			i18n.NewEngine,
		),
	)
}

func newStore(cfg *config.Config) (storage.Store, error) {
	return infrastorage.NewFileStore(cfg.Storage.Path)
}

func runCommand(params runParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				code := dispatch(context.Background(), params)
				_ = params.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
	})
}

func dispatch(ctx context.Context, params runParams) int {
	command := os.Args[1]
	args := os.Args[2:]

	// Every command starts from the persisted session, reconciled against
	// the server when the command needs fresh authority.
	params.Session.Restore(ctx)

	var err error
	switch command {
	case "login":
		err = cmdLogin(ctx, params.Session, args)
	case "register":
		err = cmdRegister(ctx, params.Session, args)
	case "whoami":
		err = cmdWhoami(ctx, params.Session)
	case "refresh":
		params.Session.Refresh(ctx)
		err = cmdWhoami(ctx, params.Session)
	case "products":
		err = cmdProducts(ctx, params.Catalog)
	case "locale":
		err = cmdLocale(ctx, params.Locale, args)
	case "logout":
		params.Session.Logout(ctx)
		fmt.Println("signed out")
	default:
		fmt.Fprint(os.Stderr, usage)

		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return 1
	}

	return 0
}

func cmdLogin(ctx context.Context, session usecase.SessionUsecase, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := session.Login(ctx, &usecase.LoginInput{Email: *email, Password: *password}); err != nil {
		return err
	}

	return cmdWhoami(ctx, session)
}

func cmdRegister(ctx context.Context, session usecase.SessionUsecase, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name")
	company := fs.String("company", "", "supplier company name")
	phone := fs.String("phone", "", "contact phone (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := &usecase.RegisterOwnerInput{
		Email:       *email,
		Password:    *password,
		FullName:    *name,
		CompanyName: *company,
		Phone:       *phone,
	}
	if err := session.RegisterOwner(ctx, input); err != nil {
		return err
	}

	return cmdWhoami(ctx, session)
}

func cmdWhoami(ctx context.Context, session usecase.SessionUsecase) error {
	if err := session.Reconcile(ctx); err != nil {
		return err
	}

	state := session.Current()
	if !state.Authenticated() {
		fmt.Println("not signed in")

		return nil
	}

	fmt.Printf("%s <%s> (%s)\n", state.User.Name, state.User.Email, state.User.Role)
	if state.Supplier != nil {
		fmt.Printf("supplier: %s (#%s)\n", state.Supplier.Name, state.Supplier.ID)
	}

	return nil
}

func cmdProducts(ctx context.Context, catalog usecase.CatalogUsecase) error {
	products, err := catalog.SupplierProducts(ctx)
	if err != nil {
		return err
	}

	for _, product := range products {
		line := fmt.Sprintf("#%s %s  %s %s", product.ID, product.Name, product.Price.StringFixed(2), product.Unit)
		if product.Discount.IsPositive() {
			line += fmt.Sprintf(" (-%s%%)", product.Discount.StringFixed(0))
		}
		fmt.Println(line)
	}

	return nil
}

func cmdLocale(ctx context.Context, locale usecase.LocaleUsecase, args []string) error {
	if len(args) == 0 {
		fmt.Println(locale.Current())

		return nil
	}
	locale.Set(ctx, entity.Locale(args[0]))
	fmt.Println(locale.Current())

	return nil
}
