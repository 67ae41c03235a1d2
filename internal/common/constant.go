package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token issued by Login and Signup.
const AccessTokenHeaderName = "access_token"
