// Command devtoken mints a session token signed with the server's identity
// secret, standing in for the identity provider during local runs.
//
//	devtoken -sub idp|alice -email alice@example.com -first Alice -last Smith
//
// The server secret and token validity come from the usual server config
// sources (-c, .env, GOPHNOTES_* and -s/-t).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-sub", "-email", "-username", "-first", "-last", "-image"})
	fs := flag.NewFlagSet("devtoken", flag.ExitOnError)

	var s auth.Session
	fs.StringVar(&s.ExternalID, "sub", "", "identity provider user id (required)")
	fs.StringVar(&s.Profile.Email, "email", "", "email")
	fs.StringVar(&s.Profile.Username, "username", "", "username")
	fs.StringVar(&s.Profile.FirstName, "first", "", "first name")
	fs.StringVar(&s.Profile.LastName, "last", "", "last name")
	fs.StringVar(&s.Profile.ImageURL, "image", "", "avatar URL")
	_ = fs.Parse(args)

	if s.ExternalID == "" {
		log.Fatal("-sub is required")
	}

	token, err := auth.IssueSessionToken(s, []byte(cfg.IdentitySecret), cfg.DevTokenValidity)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)
}
