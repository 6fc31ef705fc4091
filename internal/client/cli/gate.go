package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/onronder/durunotes-keys/internal/client/gate"
	"github.com/onronder/durunotes-keys/internal/client/services"
	"github.com/onronder/durunotes-keys/internal/common"
)

// ResolveGate computes the encryption state for the logged-in user and
// tells the user what to do next. It is called automatically after login
// and again via the "status" and "resume" commands.
func (a *App) ResolveGate(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	state, err := a.gate.Resolve(ctx)
	if err != nil {
		if errors.Is(err, gate.ErrCheckFailed) {
			fmt.Println("Could not determine encryption status. Type 'resume' to try again.")
			return err
		}
		return err
	}

	switch state {
	case gate.StateReady:
		fmt.Println("Encryption is ready.")
	case gate.StateNeedsUnlock:
		fmt.Println("A key is registered for this account. Type 'unlock' and enter your passphrase.")
	case gate.StateNeedsSetup:
		fmt.Println("No encryption key found for this account. Type 'setup' to create one.")
	}
	return nil
}

// Setup performs first-time key enrollment: prompts for a passphrase twice,
// generates and registers the key, and re-resolves the gate.
func (a *App) Setup(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	passphrase, err := getPassword(os.Stdout, "Choose a passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	confirm, err := getPassword(os.Stdout, "Repeat the passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(passphrase) != string(confirm) {
		fmt.Println("Passphrases do not match.")
		return errors.New("passphrase mismatch")
	}

	if err := a.enrollmentService.Enroll(ctx, a.userID, passphrase); err != nil {
		fmt.Println("Setup failed:", err.Error())
		return err
	}

	a.gate.InvalidateCache()
	fmt.Println("Key created.")
	return a.ResolveGate(ctx)
}

// Unlock recovers the key on this device from the server-side wrapped copy
// and re-resolves the gate.
func (a *App) Unlock(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	passphrase, err := getPassword(os.Stdout, "Enter passphrase")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	if err := a.unlockService.Unlock(ctx, a.userID, passphrase); err != nil {
		if errors.Is(err, services.ErrWrongPassphrase) {
			fmt.Println("Wrong passphrase.")
		} else {
			fmt.Println("Unlock failed:", err.Error())
		}
		return err
	}

	a.gate.InvalidateCache()
	fmt.Println("Unlocked.")
	return a.ResolveGate(ctx)
}
