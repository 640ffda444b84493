package catcommon

// ServerVersion is the version of the campus catalog server.
const ServerVersion = "0.1.0"

// ApiVersion is the version of the HTTP API.
const ApiVersion = "0.1.0-alpha.1"
