// Package auth implements the token lifecycle and role-gated access
// control for the challenges API: claims encoding and signing, token
// verification policy, the request-boundary gate, and the credential
// issuance flows that talk to the external identity provider.
//
// Tokens are stateless: validity is purely signature plus expiry, and
// there is no revocation store or refresh mechanism. A token remains
// valid until its natural expiry; re-authentication is the only way to
// extend access.
package auth
