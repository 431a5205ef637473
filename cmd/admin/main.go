// Command admin manages administrator accounts from the terminal: create
// reads ADMIN_USERNAME and ADMIN_PASSWORD, delete and list operate on the
// stored accounts. Output is aimed at the operator, not at log collectors.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tirage/internal/config"
	"tirage/internal/repository"
	"tirage/internal/storage"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var errCancelled = errors.New("operation cancelled")

func main() {
	// .env is optional, the variables may already be in the environment.
	_ = godotenv.Load()

	switch cmd := commandArg(); cmd {
	case "":
		color.Red("Erreur: aucune commande spécifiée.")
		showUsage()
		os.Exit(1)
	case "help":
		showUsage()
	case "create":
		exitOn(runCreate())
	case "delete":
		exitOn(runDelete())
	case "list":
		exitOn(runList())
	default:
		color.Red("Commande inconnue: %s", cmd)
		showUsage()
		os.Exit(1)
	}
}

// commandArg picks the first argument that is not a flag. Flags themselves
// are parsed later by config.MustLoad.
func commandArg() string {
	for _, arg := range os.Args[1:] {
		if arg == "-h" || arg == "--help" {
			return "help"
		}
		if !strings.HasPrefix(arg, "-") {
			return strings.ToLower(arg)
		}
	}

	return ""
}

func exitOn(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, errCancelled) {
		fmt.Println("Opération annulée.")
	} else {
		color.Red("Erreur: %v", err)
	}

	os.Exit(1)
}

func runCreate() error {
	cfg := config.MustLoad()

	username := cfg.Admin.Username
	password := cfg.Admin.Password
	if username == "" || password == "" {
		return errors.New("ADMIN_USERNAME et ADMIN_PASSWORD doivent être définis (.env ou environnement)")
	}

	ctx := context.Background()

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	_, err = repo.Admins.AdminByUsername(ctx, username)
	switch {
	case err == nil:
		color.Yellow("L'administrateur '%s' existe déjà.", username)
		if !confirm("Voulez-vous mettre à jour le mot de passe ? (o/n): ") {
			return errCancelled
		}

		passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := repo.Admins.UpdatePassword(ctx, username, passHash); err != nil {
			return err
		}

		color.Green("Mot de passe de l'administrateur '%s' mis à jour avec succès!", username)

		return nil
	case errors.Is(err, storage.ErrAdminNotFound):
		passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		id, err := repo.Admins.SaveAdmin(ctx, username, passHash)
		if err != nil {
			return err
		}

		admin, err := repo.Admins.AdminByID(ctx, id)
		if err != nil {
			return err
		}

		color.Green("Administrateur '%s' créé avec succès!", username)
		fmt.Printf("   ID: %s\n", admin.ID)
		fmt.Printf("   Créé le: %s\n", admin.CreatedAt.Format("2006-01-02 15:04:05"))

		return nil
	default:
		return err
	}
}

func runDelete() error {
	cfg := config.MustLoad()

	username := cfg.Admin.Username
	if username == "" {
		return errors.New("ADMIN_USERNAME doit être défini (.env ou environnement)")
	}

	ctx := context.Background()

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	if _, err := repo.Admins.AdminByUsername(ctx, username); err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			return fmt.Errorf("l'administrateur '%s' n'existe pas", username)
		}

		return err
	}

	color.Yellow("Vous êtes sur le point de supprimer l'administrateur '%s'", username)
	if !confirm("Êtes-vous sûr ? (o/n): ") {
		return errCancelled
	}

	if err := repo.Admins.DeleteAdmin(ctx, username); err != nil {
		return err
	}

	color.Green("Administrateur '%s' supprimé avec succès!", username)

	return nil
}

func runList() error {
	cfg := config.MustLoad()

	ctx := context.Background()

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer repo.Close()

	admins, err := repo.Admins.ListAdmins(ctx)
	if err != nil {
		return err
	}

	if len(admins) == 0 {
		fmt.Println("Aucun administrateur trouvé.")
		return nil
	}

	fmt.Printf("\nListe des administrateurs (%d):\n", len(admins))
	fmt.Println(strings.Repeat("-", 60))

	for _, admin := range admins {
		fmt.Printf("  ID: %s\n", admin.ID)
		fmt.Printf("  Username: %s\n", admin.Username)
		fmt.Printf("  Créé le: %s\n", admin.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(strings.Repeat("-", 60))
	}

	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(answer)) == "o"
}

func showUsage() {
	fmt.Println(`
Usage: admin [--config=chemin] <commande>

Commandes disponibles:
  create    Crée un administrateur avec ADMIN_USERNAME/ADMIN_PASSWORD
  delete    Supprime l'administrateur nommé par ADMIN_USERNAME
  list      Liste tous les administrateurs existants
  help      Affiche cette aide

La configuration est lue via --config ou la variable CONFIG_PATH.
Les identifiants peuvent venir d'un fichier .env.

Exemples:
  admin --config=./config.yaml create
  admin list`)
}
