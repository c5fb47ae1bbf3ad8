/*
Package operation runs user actions end to end.

	+-------------+
	|   Action    |
	+------+------+
	       |
	+------+------+
	|  Resolver   |  which adapter executes it
	+------+------+
	       |
	+------+------+
	|  Executor   |  adapter-level I/O
	+------+------+
	       |  move only
	+------+------+
	|  Rebinder   |  open documents follow the resource
	+-------------+

🎯 Purpose:
- Validates and resolves an action before any I/O happens
- Hands the action to the executor of the chosen adapter
- Rebinds open documents once a move succeeded

🔄 Flow:
1. Resolve fails: nothing runs and no document changes
2. Executor fails: no document changes
3. Executor succeeds and the action is a move: UpdateMoved runs
   and its report is returned with the result

🔍 Example:

	runner, err := operation.New(operation.Options{
		Resolver: transfer.NewResolver(reg),
		Executor: operation.NewJournal(),
		Rebinder: rebind.New(dir, reg),
	})
	res, err := runner.Run(ctx, transfer.Action{Kind: transfer.Move, Source: src, Dest: dest, EntryType: resource.File})
*/
package operation
