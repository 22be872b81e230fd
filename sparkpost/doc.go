// Package sparkpost sends transactional email through the SparkPost
// Transmissions API.
//
// Configuration is read from a key/value source:
//
//	SPARK_KEY              SparkPost api key (required)
//	SENDER                 from address for every message (required)
//	USE_EU                 "true" selects the EU deployment, anything else the standard one
//	SPARK_DELIVERY_POLICY  fire-and-forget (default) or propagate
//
// Usage:
//
//	cfg, err := sparkpost.LoadFromEnv()
//	if err != nil {
//		return err
//	}
//
//	sender, err := sparkpost.New(cfg, sparkpost.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.Email{
//		To:       "user@example.com",
//		Subject:  "Welcome",
//		TextBody: "Hello",
//		HTMLBody: "<p>Hello</p>",
//	})
//
// Every send outcome is logged. Under the fire-and-forget policy a failed
// delivery is only visible in the logs; under propagate SendEmail returns an
// *email.Error with reason DELIVERY_FAILED.
package sparkpost
