package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/onronder/durunotes-keys/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and passphrase and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The passphrase byte slice
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword(os.Stdout, "Enter passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	if err := a.authService.Register(ctx, userName, passphrase); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and authenticates. On success it
// records the user identity and immediately resolves the encryption gate,
// so the user is routed to setup or unlock without a separate command.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getPassword(os.Stdout, "Enter passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	userID, err := a.authService.Login(ctx, userName, passphrase)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = userName
	a.userID = userID
	a.setMode(ModeOnline)
	log.Printf("Login successfull")

	return a.ResolveGate(ctx)
}

// Logout drops the session, wipes every local key tier, and empties the
// gate's existence cache.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.gate.InvalidateCache()
	a.userName = ""
	a.userID = ""
	return nil
}
