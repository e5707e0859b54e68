/*
Package shopsdk is the client for the storefront backend API: catalog
reads, account registration and login, guest and authenticated order
submission, and the admin dashboard's parallel CRUD surface.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: unauthenticated catalog operations and Session creation
  - Session: the token-owning authorized request path

Create an SDKClient for public reads:

	client := shopsdk.NewSDKClient("https://shop.example.com/yene_api")

	products, err := client.Products(ctx)
	product, err := client.Product(ctx, productID)

A Session persists its access/refresh token pair in an injected
storage.Store, so the login survives process restarts when backed by the
sqlite store:

	store, err := sqlite.NewStore(dbPath)
	session := client.NewSession(store)

	auth, err := session.Login(ctx, email, password)
	if session.IsAuthenticated(ctx) { ... }

# Token refresh

Every Session request attaches the stored bearer token when present. On a
401 the Session performs at most one refresh-and-replay: a successful
refresh persists the new access token and replays the original request
once; a failed refresh (missing or rejected refresh token) clears both
tokens and surfaces the original unauthorized failure as an *AuthError.
A request is never retried more than once.

Guest checkout uses the same path without tokens:

	order, err := session.CreateOrder(ctx, shopsdk.CreateOrderRequest{...})

# Errors

Failures are typed: *AuthError for rejected credentials, *ValidationError
for per-field input rejection, *APIError for other non-2xx responses.
Transport failures are returned as wrapped errors from the HTTP client.
All are errors.As compatible.
*/
package shopsdk
