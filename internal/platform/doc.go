package platform

// Package platform provides operating system glue: per-user directory
// resolution and desktop-entry/autostart registration for Linux desktops.
