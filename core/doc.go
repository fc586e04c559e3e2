// Package core contains the business logic for AniFinder.
// It does not depend on the HTTP framework and can be used on its own,
// as the anifinder package does.
//
// Sub-packages:
//
// - domain: search candidates, resolutions, anime metadata and title helpers
// - resolver: the two-stage AnimeFLV title resolution
// - anime: cached AniList lookups with description translation
// - errors: typed errors mapped to HTTP statuses by the API layer
// - interfaces: contracts for providers, cache, HTTP and logging
//
// # Usage Example
//
//	provider, _ := animeflv.NewProvider("", httpClient, logger)
//	res, err := resolver.NewResolverService(provider, logger).Resolve(ctx, "Naruto: Shippuden")
//	if err != nil {
//	    // *errors.LookupError: the provider failed
//	}
//	if url, ok := res.WatchURL.Get(); ok {
//	    fmt.Println(url)
//	}
package core
