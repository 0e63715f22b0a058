// Package pip wraps the pip command-line package manager.
//
// The client shells out to pip3 and streams its output line by line; it does
// not interpret pip's output beyond the process exit code. Command execution
// sits behind the Executor interface so tests can substitute a fake.
package pip
