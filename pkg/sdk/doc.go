// Package wainnrooh embeds the places search engine in a Go program.
//
// The client loads a catalog snapshot, answers free-text and filtered
// searches, autocompletes partial queries, parses natural-language requests
// and remembers recent searches per scope in memory, Redis or Valkey.
//
//	client, _ := wainnrooh.New(ctx, wainnrooh.WithCatalogFile("places.json"))
//	defer client.Close()
//
//	page, _ := client.Search(ctx, wainnrooh.SearchQuery{
//	    Query: "كافيه حطين",
//	    Sort:  wainnrooh.SortRatingDesc,
//	    Limit: 10,
//	})
//	reply, _ := client.Ask(ctx, "مطعم رخيص في العليا")
package wainnrooh
