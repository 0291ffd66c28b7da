package ircbot

// Numeric replies the engine acts on.
const (
	RplWelcome              Numeric = 1   // "Welcome to the Internet Relay Network <nick>!<user>@<host>"
	RplEndOfMOTD            Numeric = 376 // ":End of MOTD command"
	RplErrNoMOTD            Numeric = 422 // ":MOTD File is missing"
	RplErrErroneousNickname Numeric = 432 // "<nick> :Erroneous nickname"
	RplErrNicknameInUse     Numeric = 433 // "<nick> :Nickname is already in use"
	RplErrNickCollision     Numeric = 436 // "<nick> :Nickname collision KILL from <user>@<host>"
	RplErrAlreadyRegistered Numeric = 462 // ":Unauthorized command (already registered)"
	RplErrYoureBannedCreep  Numeric = 465 // ":You are banned from this server"
)

// numericNames holds the diagnostic names of every numeric the engine knows
// about. Most of them are only ever displayed.
var numericNames = map[Numeric]string{
	1:   "RPL_WELCOME",
	2:   "RPL_YOURHOST",
	3:   "RPL_CREATED",
	4:   "RPL_MYINFO",
	5:   "RPL_BOUNCE",
	221: "RPL_UMODEIS",
	263: "RPL_TRYAGAIN",
	301: "RPL_AWAY",
	302: "RPL_USERHOST",
	303: "RPL_ISON",
	305: "RPL_UNAWAY",
	306: "RPL_NOWAWAY",
	311: "RPL_WHOISUSER",
	312: "RPL_WHOISSERVER",
	313: "RPL_WHOISOPERATOR",
	314: "RPL_WHOWASUSER",
	315: "RPL_ENDOFWHO",
	317: "RPL_WHOISIDLE",
	318: "RPL_ENDOFWHOIS",
	319: "RPL_WHOISCHANNELS",
	322: "RPL_LIST",
	323: "RPL_LISTEND",
	324: "RPL_CHANNELMODEIS",
	325: "RPL_UNIQOPIS",
	331: "RPL_NOTOPIC",
	332: "RPL_TOPIC",
	341: "RPL_INVITING",
	346: "RPL_INVITELIST",
	347: "RPL_ENDOFINVITELIST",
	348: "RPL_EXCEPTLIST",
	349: "RPL_ENDOFEXCEPTLIST",
	351: "RPL_VERSION",
	352: "RPL_WHOREPLY",
	353: "RPL_NAMREPLY",
	366: "RPL_ENDOFNAMES",
	367: "RPL_BANLIST",
	368: "RPL_ENDOFBANLIST",
	369: "RPL_ENDOFWHOWAS",
	371: "RPL_INFO",
	372: "RPL_MOTD",
	374: "RPL_ENDOFINFO",
	375: "RPL_MOTDSTART",
	376: "RPL_ENDOFMOTD",
	381: "RPL_YOUREOPER",
	391: "RPL_TIME",
	401: "ERR_NOSUCHNICK",
	402: "ERR_NOSUCHSERVER",
	403: "ERR_NOSUCHCHANNEL",
	404: "ERR_CANNOTSENDTOCHAN",
	405: "ERR_TOOMANYCHANNELS",
	406: "ERR_WASNOSUCHNICK",
	407: "ERR_TOOMANYTARGETS",
	408: "ERR_NOSUCHSERVICE",
	409: "ERR_NOORIGIN",
	411: "ERR_NORECIPIENT",
	412: "ERR_NOTEXTTOSEND",
	413: "ERR_NOTOPLEVEL",
	414: "ERR_WILDTOPLEVEL",
	415: "ERR_BADMASK",
	421: "ERR_UNKNOWNCOMMAND",
	422: "ERR_NOMOTD",
	431: "ERR_NONICKNAMEGIVEN",
	432: "ERR_ERRONEOUSNICKNAME",
	433: "ERR_NICKNAMEINUSE",
	436: "ERR_NICKCOLLISION",
	437: "ERR_UNAVAILRESOURCE",
	441: "ERR_USERNOTINCHANNEL",
	442: "ERR_NOTONCHANNEL",
	443: "ERR_USERONCHANNEL",
	451: "ERR_NOTREGISTERED",
	461: "ERR_NEEDMOREPARAMS",
	462: "ERR_ALREADYREGISTERED",
	463: "ERR_NOPERMFORHOST",
	464: "ERR_PASSWDMISMATCH",
	465: "ERR_YOUREBANNEDCREEP",
	466: "ERR_YOUWILLBEBANNED",
	467: "ERR_KEYSET",
	471: "ERR_CHANNELISFULL",
	472: "ERR_UNKNOWNMODE",
	473: "ERR_INVITEONLYCHAN",
	474: "ERR_BANNEDFROMCHAN",
	475: "ERR_BADCHANNELKEY",
	476: "ERR_BADCHANMASK",
	477: "ERR_NOCHANMODES",
	478: "ERR_BANLISTFULL",
	481: "ERR_NOPRIVILEGES",
	482: "ERR_CHANOPRIVSNEEDED",
	484: "ERR_RESTRICTED",
	485: "ERR_UNIQOPPRIVSNEEDED",
	501: "ERR_UMODEUNKNOWNFLAG",
	502: "ERR_USERSDONTMATCH",
}
