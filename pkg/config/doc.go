// Package config loads capability declarations and replay scenarios from
// YAML documents.
//
// Declaration files assemble the frozen capability registry consumed by the
// conflict resolvers; scenario files describe conflict groups so narrowing
// decisions can be reproduced outside a build. Documents are validated with
// struct tags before any registry assembly happens.
package config
