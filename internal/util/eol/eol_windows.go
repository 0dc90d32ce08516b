package eol

// Sep is the line terminator.
const Sep = "\r\n"
