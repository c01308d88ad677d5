// Package carematch provides an embedded Go client for the caregiver
// matching engine, wiring the profile store and matcher in-process over
// Redis instead of going through the HTTP API.
//
//	client, _ := carematch.New(ctx,
//	    carematch.WithRedis("localhost:6379", ""),
//	    carematch.WithOpenAIEmbedder(carematch.EmbedderConfig{
//	        BaseURL: "http://localhost:8000/v1",
//	        Model:   "all-MiniLM-L6-v2",
//	    }),
//	)
//	defer client.Close()
//
//	matches, _ := client.Match(ctx, "pt-1", 0.3)
package carematch
