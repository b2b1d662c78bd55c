// Package commands defines the mlsbridge CLI, a thin host around the group
// session library.
//
// Commands
//
//   - init           Create a local identity under a profile name
//   - fingerprint    Print the identity fingerprint
//   - key-package    Export a key package for others to add you with
//   - create-group   Found a group (random id unless one is given)
//   - join           Join a group from a welcome
//   - add            Add a member from their key package
//   - remove         Remove a member by identity
//   - encrypt        Encrypt an application message
//   - decrypt        Decrypt an application message
//   - apply-commit   Apply a commit from another member
//   - merge          Merge the pending commit
//   - discard        Discard the pending commit
//   - epoch          Print the current epoch
//   - info           Print the group snapshot as JSON
//   - groups         List the groups of a profile
//
// Binary values on the command line are base64. Nothing is sent anywhere;
// moving commits, welcomes and ciphertexts between members is up to the user.
//
// # Implementation
//
// The root command loads Config from the environment (and ./.env), applies
// flag overrides and builds the dependency graph before any subcommand runs.
package commands
