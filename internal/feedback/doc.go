// Package feedback stores user ratings of generated explanations in a
// local SQLite database so explanation quality can be reviewed over time.
package feedback
