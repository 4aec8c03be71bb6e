/*
Package operation rewrites the files of a directory so they use LF line endings.

	+-------------+
	|  Directory  |
	|   (List)    |
	+------+------+
	       |
	+------+------+
	|    File     |
	| (Normalize) |
	+------+------+

🔄 Flow:
1. List the direct entries of the target directory
2. Skip anything that is not a regular file, or matches an exclude glob
3. Print "Converting: <path>" and rewrite the file in place
4. Stop at the first failure

⚡ Failures carry a Kind so the command can map them to an exit status:

	usage  -> 1
	path   -> 2
	file   -> 3
	decode -> 4
	config -> 5

🔍 Example:

	res, err := operation.ConvertDirectory(ctx, "/srv/data")
	if err != nil {
		os.Exit(operation.ExitCode(err))
	}
*/
package operation
