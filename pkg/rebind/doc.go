/*
Package rebind keeps open documents pointed at their resources after a move.

	  move src -> dest (already done by the adapter)
	                 |
	          +------+------+
	          |  Rebinder   |
	          +------+------+
	                 |
	     +-----------+-----------+
	     |                       |
	+----+-----+          +------+------+
	| Registry |          |  Directory  |
	| (forms)  |          | (documents) |
	+----------+          +-------------+

🎯 Purpose:
- Finds every document bound to the moved resource under any of its names
- Rebinds each one through the document directory
- Reports per-document outcomes without aborting the pass

🔄 Flow:
 1. file: each alternate name of src is paired with the same form of dest,
    and every ordinary document resolving to a source name is rebound
 2. directory: the directory's own listing is rebound first, then every
    document under the source url, then ordinary documents that resolve
    under any alternate source form (relative names included)

🔍 Example:

	r := rebind.New(dir, registry, rebind.WithNotifier(notify.NewUserNotifier(nil)))
	report := r.UpdateMoved(ctx, resource.Directory, "oil:///home/u/a", "oil:///home/u/b")
	if err := report.Err(); err != nil {
		// some documents kept their old names
	}
*/
package rebind
