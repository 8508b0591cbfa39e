package scoring

// tips are general habits, shown regardless of quiz answers. The first
// eight are short tips, the last three broader habits.
var tips = []AdviceItem{
	{Icon: "envelope", ColorTag: "red", Title: "Newsletters",
		Text: "Unsubscribe from newsletters you never read to cut server storage and inbox clutter."},
	{Icon: "fan", ColorTag: "blue", Title: "Weekly Inbox Clean-up",
		Text: "Clean your inbox every week to reduce server storage and keep email fast."},
	{Icon: "cloud", ColorTag: "purple", Title: "Cloud Clutter",
		Text: "Avoid keeping useless files in the cloud to lower data center energy use."},
	{Icon: "video", ColorTag: "green", Title: "Streaming Resolution",
		Text: "Lower video resolution when high quality is not needed to save bandwidth."},
	{Icon: "images", ColorTag: "yellow", Title: "Duplicate Media",
		Text: "Delete duplicate photos and videos to free storage and cut cloud sync energy."},
	{Icon: "trash", ColorTag: "red", Title: "Empty the Bin",
		Text: "Empty your trash regularly so deleted files stop taking up storage."},
	{Icon: "bot", ColorTag: "indigo", Title: "AI on Purpose",
		Text: "Use AI tools when they are really useful. Models need significant computing resources."},
	{Icon: "phone", ColorTag: "cyan", Title: "Phone Storage",
		Text: "Remove unused apps and clear caches regularly to keep your phone storage lean."},
	{Icon: "leaf", ColorTag: "green", Title: "Email Management",
		Text: "Regular email clean-ups and unsubscribing from unwanted newsletters can significantly reduce server storage needs."},
	{Icon: "recycle", ColorTag: "blue", Title: "Data Organization",
		Text: "Organize and archive old files regularly to keep digital storage clean and avoid needless cloud sync."},
	{Icon: "tv", ColorTag: "purple", Title: "Streaming Habits",
		Text: "Adjust video quality settings and download content for offline viewing to cut streaming bandwidth."},
}

// Tips returns a copy of the general tips in display order.
func Tips() []AdviceItem {
	out := make([]AdviceItem, len(tips))
	copy(out, tips)
	return out
}
