// Package mongo manages the MongoDB connection of the service.
//
// Configuration is environment driven (see Config). New connects with the
// official v2 driver, pings the deployment and retries a bounded number of
// times so that a database which is still starting does not crash the
// process on the first attempt. Once the attempts are exhausted the error is
// returned and the caller is expected to exit.
//
// # Usage
//
//	cfg, err := config.Load[mongo.Config]()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	ready := mongo.Healthcheck(db)
//	if err := ready(ctx); err != nil {
//		log.Println("mongo is unavailable:", err)
//	}
//
// # Errors
//
// Connection failures are joined with ErrFailedToConnectToMongo, probe
// failures with ErrHealthcheckFailed. Use errors.Is to check for them.
package mongo
