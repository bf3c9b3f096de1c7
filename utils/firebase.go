// utils/firebase.go
package utils

import (
	"bizbuddy/config"
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirestoreClient *firestore.Client

// FirebaseInit initializes the Firebase App and Firestore client. Only
// required when a store backend is set to "firestore".
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile)

	conf := &firebase.Config{ProjectID: config.AppConfig.GoogleProjectID}
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FirestoreClient = client
}
